package util

import (
	"errors"
	"fmt"
	"strconv"
)

const USAGE = "Usage: %s [CAPACITY]"

// If there is exactly one positional argument, use it as the history capacity.
// given is false if no argument was passed.
func ParseCapacityArg(name string, args []string) (capacity int, given bool, err error) {
	if len(args) == 0 {
		return 0, false, nil
	} else if len(args) > 1 {
		return 0, false, errors.New(fmt.Sprintf(USAGE, name))
	}
	capacity, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, false, fmt.Errorf("Capacity must be an integer, got '%s'", args[0])
	}
	return capacity, true, nil
}
