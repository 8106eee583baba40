package player

import (
	"flag"
	"fmt"

	"golang.org/x/exp/slices"
)

func EnumFlag(target *string, name string, safelist []string, usage string) {
	usageWithValues := fmt.Sprintf("%s, must be one of %v", usage, safelist)
	flag.Func(name, usageWithValues, func(flagValue string) error {
		if !slices.Contains(safelist, flagValue) {
			return fmt.Errorf("must be one of %v", safelist)
		}
		*target = flagValue
		return nil
	})
}
