package instance

import (
	"runtime/debug"
	"strings"
	"sync"
)

// Version reports the main module's version, with the vcs revision appended
// when the module version doesn't already carry it.
var Version = sync.OnceValue(func() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "0.0.0-development+unknown"
	}
	v := bi.Main.Version
	for _, s := range bi.Settings {
		if s.Key != "vcs.revision" || s.Value == "" {
			continue
		}
		rev := s.Value
		if len(rev) > 8 {
			rev = rev[:8]
		}
		// go pseudo-versions often contain the hash already
		if !strings.Contains(v, rev) {
			v += "+" + rev
		}
	}
	return v
})
