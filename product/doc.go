// Package product provides the USB product name of the firmware and the
// string descriptor that carries it.
//
// [Resolve] pairs a [board.Profile] with a name. For a source-mode board the
// result holds the encoded descriptor; for an external-mode board it holds
// no descriptor and points at the build configuration that sets the name.
//
// Firmware built with the teensy40 or teensy41 tag also gets
// [StringProduct], the descriptor as a fixed-size array whose length is
// computed from [Name]. Builds for any other board do not define it.
package product
