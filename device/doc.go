// Package device serves string descriptors to a USB host.
//
// A [StringTable] holds pre-encoded string descriptors by index, with the
// language table at index zero. [StringTable.HandleSetup] answers the
// standard GET_DESCRIPTOR(STRING) request the host issues during
// enumeration, so a USB stack only has to forward control requests:
//
//	var table device.StringTable
//	table.SetLanguagesFrom(langBuf[:], descriptor.LangIDUSEnglish)
//	table.Set(board.DefaultProductIndex, product.StringProduct[:])
//
//	resp, err := table.HandleSetup(&setup)
//
// Stored descriptors are referenced, not copied, so firmware can keep them in
// static storage.
package device
