package jail

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sys/unix"
)

// ByName looks up a live jail by name.
func ByName(name string) (Jail, error) {
	jid, err := jailGet([]param{stringParam("name", name)}, 0)
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return Jail{}, fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return Jail{}, fmt.Errorf("jail_get name=%q: %w", name, err)
	}
	return Jail{JID: jid}, nil
}

// ByID looks up a live jail by JID, confirming it exists.
func ByID(jid int) (Jail, error) {
	got, err := jailGet([]param{intParam("jid", int32(jid))}, 0)
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return Jail{}, fmt.Errorf("jid %d: %w", jid, ErrNotFound)
		}
		return Jail{}, fmt.Errorf("jail_get jid=%d: %w", jid, err)
	}
	return Jail{JID: got}, nil
}

// Resolve looks up a jail from a user-supplied spec: a decimal JID, or else
// a jail name. Jail names may not be purely numeric, so the two cannot
// collide.
func Resolve(spec string) (Jail, error) {
	if jid, err := strconv.Atoi(spec); err == nil {
		return ByID(jid)
	}
	return ByName(spec)
}

// List returns all jails visible to the current process, in JID order. It
// iterates jail_get(2) with the lastjid cursor parameter.
func List() ([]Info, error) {
	var out []Info
	for last := int32(0); ; {
		params := []param{
			intParam("lastjid", last),
			outParam("name", maxNameLen),
			outParam("path", maxPathLen),
			outParam("host.hostname", maxHostLen),
		}
		jid, err := jailGet(params, 0)
		if errors.Is(err, unix.ENOENT) {
			// no jail beyond the cursor, iteration is done
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("listing jails: %w", err)
		}
		out = append(out, Info{
			Jail:     Jail{JID: jid},
			Name:     params[1].cstring(),
			Path:     params[2].cstring(),
			Hostname: params[3].cstring(),
		})
		last = int32(jid)
	}
}
