// Package board describes the boards the firmware targets and how each one
// receives its USB product name.
//
// A [Profile] is selected by board [Identity]. Teensy 4.x boards compile the
// product-name string descriptor into the firmware ([ModeSource]). AVR boards
// with native USB (ATmega32U4, ATmega16U4) take the name from the Arduino
// core's boards.txt ([ModeExternal]); the firmware must not define the
// descriptor symbol for them. Any other identity is an error, reported as
// [pkg.ErrUnhandledBoard].
//
// The identity compiled into a firmware image is chosen by build tag, using
// the tags TinyGo sets for each target:
//
//	tinygo build -target=teensy41 ./...     // board.Selected() → Teensy41
//	tinygo build -target=arduino-leonardo   // board.Selected() → ATmega32U4
//
// Without one of those tags [Selected] returns [pkg.ErrUnhandledBoard].
package board
