// Package unity bridges to UnityPy, the external Unity asset-bundle
// parser, by running an embedded Python export script. The bundle binary
// format is entirely owned by UnityPy; this package only shells out and
// interprets its output.
package unity

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

const binaryName = "python3"

// Asset describes one 2D object enumerated from the game data.
type Asset struct {
	Type   string
	Name   string
	Width  int
	Height int
}

// IsAvailable returns true if python3 with UnityPy is usable.
func IsAvailable() bool {
	if _, err := exec.LookPath(binaryName); err != nil {
		return false
	}
	return exec.Command(binaryName, "-c", "import UnityPy").Run() == nil
}

// exportScript dumps or lists 2D objects from resources.assets. UnityPy
// resolves .resS companions relative to the working directory, so the
// script chdirs into the data directory first.
const exportScript = `import os
import sys

import UnityPy

mode = sys.argv[1]
data_dir = sys.argv[2]

os.chdir(data_dir)
env = UnityPy.Environment()
env.load_file(os.path.join(data_dir, "resources.assets"))

if mode == "dump":
    out_dir = sys.argv[3]
    for obj in env.objects:
        if obj.type.name != "Sprite":
            continue
        try:
            data = obj.read()
            name = getattr(data, "m_Name", "")
            if not name:
                continue
            img = data.image
            if img:
                safe = name.replace("/", "_").replace("\\", "_")
                img.save(os.path.join(out_dir, safe + ".png"))
            del img
            del data
        except Exception as e:
            print("error\t%s" % e, file=sys.stderr)
elif mode == "list":
    for obj in env.objects:
        t = obj.type.name
        if t not in ("Sprite", "Texture2D"):
            continue
        try:
            data = obj.read()
            name = getattr(data, "m_Name", "")
            if t == "Sprite":
                img = data.image
                w, h = (img.width, img.height) if img else (0, 0)
            else:
                w = getattr(data, "m_Width", 0)
                h = getattr(data, "m_Height", 0)
            print("%s\t%s\t%d\t%d" % (t, name, w, h))
            del data
        except Exception as e:
            print("error\t%s" % e, file=sys.stderr)
`

// run writes the export script to a temp file and executes it with the
// given mode arguments.
func run(ctx context.Context, stdout io.Writer, args ...string) error {
	tmp, err := os.CreateTemp("", "pinacotheca-export-*.py")
	if err != nil {
		return fmt.Errorf("failed to create export script: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(exportScript); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write export script: %w", err)
	}
	tmp.Close()

	cmd := exec.CommandContext(ctx, binaryName, append([]string{tmp.Name()}, args...)...)
	cmd.Stdout = stdout
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("UnityPy export failed: %w\noutput: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Dump extracts every Sprite object in the game data as <name>.png into
// outDir. Objects that fail to decode are skipped by the script.
func Dump(ctx context.Context, gameData, outDir string) error {
	return run(ctx, io.Discard, "dump", gameData, outDir)
}

// List enumerates Sprite and Texture2D objects with their dimensions.
func List(ctx context.Context, gameData string) ([]Asset, error) {
	var out strings.Builder
	if err := run(ctx, &out, "list", gameData); err != nil {
		return nil, err
	}
	return ParseAssetList(strings.NewReader(out.String()))
}

// ParseAssetList reads tab-separated "type name width height" lines as
// emitted by the export script's list mode. Malformed lines are skipped.
func ParseAssetList(r io.Reader) ([]Asset, error) {
	var assets []Asset
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) != 4 {
			continue
		}
		w, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		h, err := strconv.Atoi(fields[3])
		if err != nil {
			continue
		}
		assets = append(assets, Asset{Type: fields[0], Name: fields[1], Width: w, Height: h})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read asset list: %w", err)
	}
	return assets, nil
}
