package harness

import (
	"container/list"
	"fmt"

	"github.com/conn-castle/ownerbench/internal/config"
	"github.com/conn-castle/ownerbench/internal/messages"
	"github.com/conn-castle/ownerbench/internal/owner"
)

// Suite names, in menu order.
const (
	SuiteUnique       = "unique"
	SuiteShared       = "shared"
	SuiteListUnique   = "list-unique"
	SuiteListShared   = "list-shared"
	SuiteNativeUnique = "native-unique"
	SuiteNativeShared = "native-shared"
	SuiteNativeList   = "native-list"
)

// Tier is a named load size.
type Tier struct {
	Name string
	Size int
}

// TiersFromConfig returns the configured tiers in the configured order.
func TiersFromConfig(load config.LoadConfig) ([]Tier, error) {
	tiers := make([]Tier, 0, len(load.Tiers))
	for _, name := range load.Tiers {
		size := load.Size(name)
		if size <= 0 {
			return nil, fmt.Errorf(messages.HarnessUnknownTierFmt, name)
		}
		tiers = append(tiers, Tier{Name: name, Size: size})
	}
	return tiers, nil
}

// Catalog returns every suite with load cases for the given tiers.
func Catalog(tiers []Tier) []Suite {
	return []Suite{
		{
			Name:  SuiteUnique,
			Title: messages.SuiteUniqueTitle,
			Cases: append([]Case{
				{Name: "element addition", Kind: KindFunctional, Run: checkUniqueElement},
				{Name: "release", Kind: KindFunctional, Run: checkUniqueRelease},
				{Name: "indexation", Kind: KindFunctional, Run: checkUniqueIndexing},
				{Name: "subtyping", Kind: KindFunctional, Run: checkUniqueSubtyping},
				{Name: "move", Kind: KindFunctional, Run: checkUniqueMove},
			}, loadCases(tiers, loadUnique)...),
		},
		{
			Name:  SuiteShared,
			Title: messages.SuiteSharedTitle,
			Cases: append([]Case{
				{Name: "initialization", Kind: KindFunctional, Run: checkSharedInit},
				{Name: "copy construction", Kind: KindFunctional, Run: checkSharedCopy},
				{Name: "subtyping", Kind: KindFunctional, Run: checkSharedSubtyping},
				{Name: "destruction", Kind: KindFunctional, Run: checkSharedDestruction},
			}, loadCases(tiers, loadShared)...),
		},
		{
			Name:  SuiteListUnique,
			Title: messages.SuiteListUniqueTitle,
			Cases: append(listChecks(newUniqueIntList), loadCases(tiers, loadList(newUniqueIntList))...),
		},
		{
			Name:  SuiteListShared,
			Title: messages.SuiteListSharedTitle,
			Cases: append(listChecks(newSharedIntList), loadCases(tiers, loadList(newSharedIntList))...),
		},
		{
			Name:  SuiteNativeUnique,
			Title: messages.SuiteNativeUniqueTitle,
			Cases: append([]Case{
				{Name: "initialization", Kind: KindFunctional, Run: checkNativeInit},
				{Name: "release", Kind: KindFunctional, Run: checkNativeRelease},
			}, loadCases(tiers, loadNative)...),
		},
		{
			Name:  SuiteNativeShared,
			Title: messages.SuiteNativeSharedTitle,
			Cases: append([]Case{
				{Name: "initialization", Kind: KindFunctional, Run: checkNativeInit},
				{Name: "initialization and copying", Kind: KindFunctional, Run: checkNativeCopy},
			}, loadCases(tiers, loadNativeShared)...),
		},
		{
			Name:  SuiteNativeList,
			Title: messages.SuiteNativeListTitle,
			Cases: append([]Case{
				{Name: "push, pop and peek", Kind: KindFunctional, Run: checkContainerList},
			}, loadCases(tiers, loadContainerList)...),
		},
	}
}

// Lookup finds the suite called name.
func Lookup(suites []Suite, name string) (Suite, bool) {
	for _, s := range suites {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}

func loadCases(tiers []Tier, run func(e *Exec) error) []Case {
	cases := make([]Case, 0, len(tiers))
	for _, tier := range tiers {
		cases = append(cases, Case{
			Name: fmt.Sprintf(messages.LoadCaseNameFmt, tier.Name),
			Kind: KindLoad,
			Size: tier.Size,
			Run:  run,
		})
	}
	return cases
}

func loadUnique(e *Exec) error {
	var handles []*owner.Unique[int]
	for i := 0; i < e.Size(); i++ {
		handles = append(handles, owner.NewUnique(intPtr(i)))
		e.Tick(i + 1)
	}
	e.StopTimer()
	for _, h := range handles {
		h.Drop()
	}
	return nil
}

func loadShared(e *Exec) error {
	var handles []*owner.Shared[int]
	for i := 0; i < e.Size(); i++ {
		handles = append(handles, owner.NewShared(intPtr(i)))
		e.Tick(i + 1)
	}
	e.StopTimer()
	for _, h := range handles {
		h.Drop()
	}
	return nil
}

func loadList(newList func() intList) func(e *Exec) error {
	return func(e *Exec) error {
		l := newList()
		for i := 0; i < e.Size(); i++ {
			l.PushFront(i)
			e.Tick(i + 1)
		}
		e.StopTimer()
		e.SetResultSize(l.Size())
		l.Drop()
		return nil
	}
}

func loadNative(e *Exec) error {
	var pointers []*int
	for i := 0; i < e.Size(); i++ {
		pointers = append(pointers, intPtr(i))
		e.Tick(i + 1)
	}
	e.StopTimer()
	return nil
}

// loadNativeShared keeps a second reference to every value, the collector's
// version of a shared count.
func loadNativeShared(e *Exec) error {
	var pointers, aliases []*int
	for i := 0; i < e.Size(); i++ {
		p := intPtr(i)
		pointers = append(pointers, p)
		aliases = append(aliases, p)
		e.Tick(i + 1)
	}
	e.StopTimer()
	return nil
}

func loadContainerList(e *Exec) error {
	l := list.New()
	for i := 0; i < e.Size(); i++ {
		l.PushFront(i)
		e.Tick(i + 1)
	}
	e.StopTimer()
	e.SetResultSize(l.Len())
	return nil
}
