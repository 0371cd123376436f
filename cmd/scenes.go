package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in scenes and any JSON scenes found in the scene directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes := scene.List()
	files, err := scene.ListSceneFiles(ctx.String("dir"))
	if err != nil {
		logger.Error(err)
		return err
	}
	scenes = append(scenes, files...)

	fmt.Fprint(ctx.App.Writer, formatSceneTable(scenes))
	return nil
}

func formatSceneTable(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Type", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.Name, info.Type, info.Description})
	}

	table.Render()
	return buf.String()
}
