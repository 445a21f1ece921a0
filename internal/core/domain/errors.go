package domain

import "errors"

// ErrAssetNotFound is an error thrown when an asset does not exist, is
// inactive, or belongs to a different owner
var ErrAssetNotFound = errors.New("asset not found")

// ErrSessionNotFound is an error thrown when an upload session is not found
var ErrSessionNotFound = errors.New("upload session not found")

// ErrUnsupportedContentType is an error thrown when the declared content
// type is not an allowed video MIME type
var ErrUnsupportedContentType = errors.New("unsupported content type")

// ErrFileSizeTooBig is an error thrown when the declared size exceeds the cap
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrInvalidFileSize is an error thrown when the declared size is not positive
var ErrInvalidFileSize = errors.New("invalid file size")

// ErrAssetNotReady is an error thrown when an operation requires a
// completed asset
var ErrAssetNotReady = errors.New("asset not ready")

// ErrAssetNotRetryable is an error thrown when retry is requested for an
// asset that is not in the failed state
var ErrAssetNotRetryable = errors.New("asset not retryable")

// ErrNoSignedPlayback is an error thrown when the provider asset carries no
// signed-capable playback target
var ErrNoSignedPlayback = errors.New("no signed playback target")

// ErrInvalidSignature is an error thrown when the webhook signature does
// not match the payload
var ErrInvalidSignature = errors.New("invalid webhook signature")

// ErrStaleEvent is an error thrown when a webhook event is older than the
// configured tolerance
var ErrStaleEvent = errors.New("stale webhook event")

// ErrMalformedEvent is an error thrown when a webhook payload cannot be decoded
var ErrMalformedEvent = errors.New("malformed webhook event")

// ErrMissingPassthrough is an error thrown when an event carries no usable
// passthrough asset id
var ErrMissingPassthrough = errors.New("missing passthrough asset id")

// ErrProviderUnavailable is an error thrown when a media provider call fails
var ErrProviderUnavailable = errors.New("media provider unavailable")
