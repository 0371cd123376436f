package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-raytracer/pkg/renderer"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Load
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to scene file (json type only)
}

type builtinScene struct {
	info    SceneInfo
	factory func(...renderer.CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Small sphere resting on a large ground sphere",
			Type:        "builtin",
		},
		factory: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "spheregrid",
			Name:        "Sphere Grid",
			Description: "5x5 grid of small spheres on a large ground sphere",
			Type:        "builtin",
		},
		factory: NewSphereGridScene,
	},
}

// List returns the built-in scenes in display order
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}
	return scenes
}

// Load resolves a built-in scene name or a path to a .json scene file
func Load(nameOrPath string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == nameOrPath {
			return b.factory(cameraOverrides...), nil
		}
	}

	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return LoadFile(nameOrPath, cameraOverrides...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, nameOrPath)
}

// ListSceneFiles scans dir for .json scenes. A missing directory yields an
// empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %v", err)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Keep going; one broken file should not hide the others
			logger.Warningf("failed to parse metadata for %s: %v", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a JSON scene,
// falling back to a title derived from the file name
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Type:     "json",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return sceneInfo, err
	}
	defer file.Close()

	cfg, err := DecodeConfig(file)
	if err != nil {
		return sceneInfo, err
	}
	if cfg.Name != "" {
		sceneInfo.Name = cfg.Name
	}
	sceneInfo.Description = cfg.Description

	return sceneInfo, nil
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
