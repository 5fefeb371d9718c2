package resources

type ResourceType int

/** @brief Kinds of native handle. Each one is released by a different backend call. */
const (
	ResourceTypeTexture ResourceType = iota
	ResourceTypeFont
	ResourceTypeSound
	ResourceTypeMusic
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeTexture:
		return "texture"
	case ResourceTypeFont:
		return "font"
	case ResourceTypeSound:
		return "sound"
	case ResourceTypeMusic:
		return "music"
	}
	return "unknown"
}
