// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import "sync"

// Process-wide save defaults, wired at startup (for example from the config
// file) via the SetDefault* helpers and read by every save call that does
// not override them.
var (
	defaultsMu     sync.RWMutex
	defaultComment = "sshkeys-generated-key"
	defaultBinary  = false
)

// SetDefaultComment sets the comment used when a save call provides none.
func SetDefaultComment(comment string) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultComment = comment
}

// DefaultComment returns the process-wide default comment.
func DefaultComment() string {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultComment
}

// SetDefaultBinary sets whether public keys are saved as raw blobs rather
// than text lines when a save call does not specify.
func SetDefaultBinary(binary bool) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultBinary = binary
}

// DefaultBinary returns the process-wide default output mode.
func DefaultBinary() bool {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultBinary
}

// SaveOptions overrides the process-wide save defaults for one call.
// A nil options pointer, an empty Comment, or an unset Binary all fall back
// to the defaults.
type SaveOptions struct {
	// Comment overrides the default comment. The loaded key's own comment
	// takes precedence over the process default but not over this field.
	Comment string

	// Binary selects the raw SSH-packed blob instead of the base64 text
	// line. When an options struct is passed, this value is used as-is.
	Binary bool
}

// effective resolves the comment and output mode for one save call.
func (k *Key) effective(opts *SaveOptions) (comment string, binary bool) {
	comment = DefaultComment()
	if k.Comment != "" {
		comment = k.Comment
	}
	binary = DefaultBinary()
	if opts != nil {
		if opts.Comment != "" {
			comment = opts.Comment
		}
		binary = opts.Binary
	}
	return comment, binary
}
