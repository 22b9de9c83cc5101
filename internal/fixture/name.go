package fixture

import "fmt"

// MakeName builds the output file name for one iteration of a run:
// {prefix}_{index}.{extension}, with the index left-padded with zeros to at
// least zeroPad digits when zeroPad is positive. Padding widens, never
// truncates. Prefix and extension are used exactly as given.
func MakeName(prefix, extension string, index, zeroPad int) string {
	if zeroPad > 0 {
		return fmt.Sprintf("%s_%0*d.%s", prefix, zeroPad, index, extension)
	}
	return fmt.Sprintf("%s_%d.%s", prefix, index, extension)
}
