package cmdshared

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/viper"
	"gopkg.in/dixonwille/wmenu.v4"

	"github.com/vsmodtools/vsmod/core"
	"github.com/vsmodtools/vsmod/internal/shared"
)

func PromptYesNo(prompt string) bool {
	fmt.Print(prompt)
	if viper.GetBool("non-interactive") {
		fmt.Println("Y (non-interactive mode)")
		return true
	}
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		shared.Exitf("Failed to prompt user: %v\n", err)
	}

	ansNormal := strings.ToLower(strings.TrimSpace(answer))
	if len(ansNormal) > 0 && ansNormal[0] == 'n' {
		return false
	}
	return true
}

// ModMatches implements the fuzzy matching interface over mod display names.
type ModMatches []*core.Mod

func (r ModMatches) String(i int) string {
	return r[i].DisplayName()
}

func (r ModMatches) Len() int {
	return len(r)
}

// ChooseMod picks one mod for a search term. A single candidate is returned
// directly; otherwise candidates are fuzzy-ranked and, unless running
// non-interactively, offered as a menu. The second return is true when the
// user cancelled.
func ChooseMod(searchTerm string, mods []*core.Mod) (*core.Mod, bool) {
	if len(mods) == 0 {
		return nil, false
	}
	if len(mods) == 1 {
		return mods[0], false
	}

	fuzzySearchResults := fuzzy.FindFrom(searchTerm, ModMatches(mods))

	if viper.GetBool("non-interactive") {
		if len(fuzzySearchResults) > 0 {
			return mods[fuzzySearchResults[0].Index], false
		}
		return mods[0], false
	}

	menu := wmenu.NewMenu("Choose a number:")

	menu.Option("Cancel", nil, false, nil)
	if len(fuzzySearchResults) == 0 {
		for i, v := range mods {
			menu.Option(v.DisplayName()+" ("+v.Summary()+")", v, i == 0, nil)
		}
	} else {
		for i, v := range fuzzySearchResults {
			mod := mods[v.Index]
			menu.Option(mod.DisplayName()+" ("+mod.Summary()+")", mod, i == 0, nil)
		}
	}

	var chosen *core.Mod
	var cancelled bool
	menu.Action(func(menuRes []wmenu.Opt) error {
		if len(menuRes) != 1 || menuRes[0].Value == nil {
			fmt.Println("Cancelled!")
			cancelled = true
			return nil
		}

		var ok bool
		chosen, ok = menuRes[0].Value.(*core.Mod)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		return nil
	})
	if err := menu.Run(); err != nil {
		shared.Exitln(err)
	}

	if cancelled {
		return nil, true
	}
	return chosen, false
}
