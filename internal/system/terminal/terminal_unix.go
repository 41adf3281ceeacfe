// Released under an MIT license. See LICENSE.

//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

func columns(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}

	return int(ws.Col)
}
