// Command assetgen renders the ByteBuddy spritesheet, tileset, and box
// metadata into an output directory. The game and the sheetedit tool both
// read the files it writes.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/bytebuddy/platformer/assetgen"
	"github.com/bytebuddy/platformer/common"
)

func main() {
	outDir := flag.String("outdir", common.DefaultAssetDir(), "directory to write the generated files into")
	scale := flag.Int("scale", 1, "integer upscale factor for the output images")
	flag.Parse()

	res, err := assetgen.Generate(*outDir, *scale)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.Fatal(err)
	}
}
