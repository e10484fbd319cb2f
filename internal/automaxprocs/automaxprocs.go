// Package automaxprocs sets GOMAXPROCS to match the process's
// container CPU quota on import, so a worker team sized off
// runtime.GOMAXPROCS(0) reflects the cgroup limit rather than the
// host's full core count.
package automaxprocs

import "go.uber.org/automaxprocs/maxprocs"

func init() {
	maxprocs.Set()
}
