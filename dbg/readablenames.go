package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. This is helpful for turning pointers and arena
// handles into something more easily distinguishable when debugging.

var (
	memoMu sync.Mutex
	memo   map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable name for obj. obj must be comparable. Negative
// integers are sentinels (no triangle, no node) and nil is nil.
func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Invalid:
		return "Ø"
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		if v.IsNil() {
			return "Ø"
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() < 0 {
			return "Ø"
		}
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Dump pretty prints a value with its full structure.
func Dump(obj interface{}) string {
	return spew.Sdump(obj)
}
