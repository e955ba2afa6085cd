package embedded

import _ "embed"

// SampleAddressBookData is the address book shown on first start, in the
// storage file format.
//
//go:embed sample/addressbook.yaml
var SampleAddressBookData []byte
