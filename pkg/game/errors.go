package game

import "fmt"

// AssetLoadError reports an asset that is missing or cannot be decoded.
// It is not recovered from: scene construction fails and so does startup.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
