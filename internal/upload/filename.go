package upload

import (
	"github.com/gabriel-vasile/mimetype"

	"github.com/vidabem/securechat/internal/utils"
)

// Namer produces storage names for admitted files. The client-supplied
// filename is discarded entirely: the stored name is a fresh UUID plus
// the extension of the content-detected type, so no user input ever
// reaches the filesystem layer.
type Namer struct {
	uuid *utils.UUIDGenerator
}

// NewNamer constructs a [Namer].
func NewNamer() *Namer {
	return &Namer{uuid: utils.NewUUIDGenerator()}
}

// StorageName returns a unique storage-safe name for a file of the
// given detected MIME type. The name the uploader gave the file is
// deliberately never consulted: the stored name derives only from a
// fresh UUID and the content-detected type, so client-controlled names
// cannot reach storage. Types without a registered extension get no
// extension at all rather than a guessed one.
func (n *Namer) StorageName(detectedType string) string {
	name := n.uuid.Generate()

	if m := mimetype.Lookup(trimParams(detectedType)); m != nil && m.Extension() != "" {
		name += m.Extension()
	}

	return name
}
