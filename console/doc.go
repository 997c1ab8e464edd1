// Package console is the Bubble Tea session controller for zoneterm.
//
// The console has two modes. In control mode single keys select, delete and
// save zones. In editing mode every key is forwarded to a lineinput.Engine;
// a committed line is parsed as a new zone, and cancelling returns to control
// mode. Price samples from the market poller update the live price panel, the
// nearest-zone view and the alert list.
package console
