package keys

import "errors"

// ErrCorruptKeyBlob indicates a persisted wrapped-key blob that cannot
// be decoded. Decryption failures of the blob surface as
// crypto.ErrIntegrityFailure instead.
var ErrCorruptKeyBlob = errors.New("corrupt wrapped key blob")
