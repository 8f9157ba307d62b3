package tutorial

import "fmt"

// fakeSaver is an in-memory ArtifactSaver for pipeline tests.
type fakeSaver struct {
	saved []string
	err   error
}

func (f *fakeSaver) SaveArtifact(data []byte, mimeType, baseName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	path := fmt.Sprintf("/generated/%s_%d.png", baseName, len(f.saved))
	f.saved = append(f.saved, path)
	return path, nil
}
