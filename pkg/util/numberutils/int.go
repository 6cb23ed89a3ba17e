package numberutils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToNonNegativeInt converts the given string to an integer >= 0, such as a list index.
func ToNonNegativeInt(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("negative value %d", i)
	}
	return i, nil
}
