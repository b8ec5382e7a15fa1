package utils

import (
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	xMu   sync.Mutex
	xConn *xgb.Conn
	xRoot xproto.Window
)

func connectX11() (*xgb.Conn, xproto.Window, error) {
	if xConn != nil {
		return xConn, xRoot, nil
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, 0, err
	}
	setup := xproto.Setup(conn)
	xConn, xRoot = conn, setup.DefaultScreen(conn).Root
	return xConn, xRoot, nil
}

// DisplaySize returns the size of the X11 root window. It is usable before a
// raylib window exists, unlike rl.GetMonitorWidth. A failed connection is
// retried on the next call.
func DisplaySize() (int, int, error) {
	xMu.Lock()
	defer xMu.Unlock()

	conn, root, err := connectX11()
	if err != nil {
		return 0, 0, fmt.Errorf("connect to X server: %w", err)
	}

	reply, err := xproto.GetGeometry(conn, xproto.Drawable(root)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("query root geometry: %w", err)
	}
	return int(reply.Width), int(reply.Height), nil
}

// CloseDisplay releases the X11 connection opened by DisplaySize. A later
// DisplaySize reconnects.
func CloseDisplay() {
	xMu.Lock()
	defer xMu.Unlock()

	if xConn != nil {
		xConn.Close()
		xConn, xRoot = nil, 0
	}
}
