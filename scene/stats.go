package scene

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/aobench/types"
	"github.com/olekukonko/tablewriter"
)

// Build a tabular representation of the scene primitives.
func (s *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Primitive", "Position", "Normal", "Radius"})
	table.Append([]string{"Plane", fmtVec3(s.Plane.Point), fmtVec3(s.Plane.Normal), "-"})
	for idx, sphere := range s.Spheres {
		table.Append([]string{
			fmt.Sprintf("Sphere %d", idx),
			fmtVec3(sphere.Center),
			"-",
			fmt.Sprintf("%.3f", sphere.Radius),
		})
	}
	table.SetFooter([]string{"Total", fmt.Sprintf("%d primitive(s)", 1+len(s.Spheres)), " ", " "})

	table.Render()
	return buf.String()
}

func fmtVec3(v types.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}
