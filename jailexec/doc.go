// Package jailexec starts child processes already confined to a running
// FreeBSD jail.
//
// The confinement happens at spawn time: [Jailed] records the jail on the
// command's SysProcAttr, and the kernel attaches the forked child to the jail
// before it execs, so the new program never runs a single instruction outside
// the jail. An attach failure aborts the spawn and surfaces as an ordinary
// start error in the parent, the same shape as any other failure from
// exec.Cmd.Start; the parent itself is never attached.
//
// Only FreeBSD builds offer this capability. For the option-driven builder
// equivalent, see shx.WithJail.
package jailexec
