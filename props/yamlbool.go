package props

import "fmt"

// ParseYAMLBool interprets s the way a YAML 1.1 template would. This
// matters because CloudFormation takes a YAML value of true and passes
// it to the resource as the string "true", which the json unmarshaler
// refuses to put into a bool.
func ParseYAMLBool(s string) (bool, error) {
	switch s {
	case "y", "Y", "yes", "Yes", "YES", "true", "True", "TRUE", "on", "On", "ON":
		return true, nil
	case "n", "N", "no", "No", "NO", "false", "False", "FALSE", "off", "Off", "OFF":
		return false, nil
	}
	return false, fmt.Errorf("cannot parse %q as YAML bool", s)
}
