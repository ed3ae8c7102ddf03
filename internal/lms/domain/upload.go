package domain

import "io"

// MaxPDFBytes caps course PDF uploads.
const MaxPDFBytes = 10 << 20

const ContentTypePDF = "application/pdf"

// Upload is a file received from a client.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// StoredObject is where an upload ended up.
type StoredObject struct {
	Bucket string
	Key    string
	URL    string
	Name   string
	Size   int64
}
