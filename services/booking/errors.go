package booking

import (
	"strings"

	"github.com/juju/errors"
)

// missingFields returns a NotValid error naming every empty field, or nil.
func missingFields(fields ...[2]string) error {
	var missing []string
	for _, f := range fields {
		if f[1] == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return errors.NewNotValid(nil, "Missing fields: "+strings.Join(missing, ", "))
}
