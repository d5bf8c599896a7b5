package scene

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/franky-adl/synthwave-scene/internal/config"
	"github.com/franky-adl/synthwave-scene/internal/engine/lighting"
	"github.com/franky-adl/synthwave-scene/internal/engine/scene/shaders"
	"github.com/franky-adl/synthwave-scene/internal/engine/shader"
	"github.com/franky-adl/synthwave-scene/internal/engine/terrain"
	"github.com/franky-adl/synthwave-scene/pkg/math"
)

// terrainMesh is the GPU-resident triangle mesh of one grid variant.
type terrainMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// TerrainRenderer draws the filled terrain surface of every tile.
type TerrainRenderer struct {
	program uint32

	locModel      int32
	locViewProj   int32
	locCameraPos  int32
	locBaseColor  int32
	locMetalness  int32
	locRoughness  int32
	locDirDir     int32
	locDirColor   int32
	locDirInt     int32
	locSpotPos    int32
	locSpotDir    int32
	locSpotColor  int32
	locSpotInt    int32
	locSpotCutoff int32
	locSpotPen    int32

	meshes map[*terrain.Grid]*terrainMesh
}

// NewTerrainRenderer compiles the terrain shader and uploads both grid
// variants of the tile set.
func NewTerrainRenderer(ts *terrain.TileSet) (*TerrainRenderer, error) {
	tr := &TerrainRenderer{
		meshes: make(map[*terrain.Grid]*terrainMesh),
	}

	program, err := shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	tr.program = program

	tr.locModel = shader.GetUniform(program, "uModel")
	tr.locViewProj = shader.GetUniform(program, "uViewProj")
	tr.locCameraPos = shader.GetUniform(program, "uCameraPos")
	tr.locBaseColor = shader.GetUniform(program, "uBaseColor")
	tr.locMetalness = shader.GetUniform(program, "uMetalness")
	tr.locRoughness = shader.GetUniform(program, "uRoughness")
	tr.locDirDir = shader.GetUniform(program, "uDirDirection")
	tr.locDirColor = shader.GetUniform(program, "uDirColor")
	tr.locDirInt = shader.GetUniform(program, "uDirIntensity")
	tr.locSpotPos = shader.GetUniform(program, "uSpotPositions")
	tr.locSpotDir = shader.GetUniform(program, "uSpotDirections")
	tr.locSpotColor = shader.GetUniform(program, "uSpotColors")
	tr.locSpotInt = shader.GetUniform(program, "uSpotIntensities")
	tr.locSpotCutoff = shader.GetUniform(program, "uSpotCosCutoff")
	tr.locSpotPen = shader.GetUniform(program, "uSpotPenumbra")

	for i := range ts.Tiles {
		g := ts.Tiles[i].Grid
		if _, ok := tr.meshes[g]; !ok {
			tr.meshes[g] = uploadGridMesh(g)
		}
	}

	return tr, nil
}

func uploadGridMesh(g *terrain.Grid) *terrainMesh {
	vertices := g.FlattenPositions()
	indices := g.TriangleIndices()

	m := &terrainMesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return m
}

// Render draws the surface of every tile in the set.
func (tr *TerrainRenderer) Render(ts *terrain.TileSet, viewProj math.Mat4, cameraPos [3]float32, rig *lighting.Rig, mat *config.MaterialParams) {
	gl.UseProgram(tr.program)
	gl.UniformMatrix4fv(tr.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(tr.locCameraPos, cameraPos[0], cameraPos[1], cameraPos[2])
	gl.Uniform3f(tr.locBaseColor, mat.Color[0], mat.Color[1], mat.Color[2])
	gl.Uniform1f(tr.locMetalness, mat.Metalness)
	gl.Uniform1f(tr.locRoughness, mat.Roughness)

	gl.Uniform3fv(tr.locDirDir, 1, &rig.Dir.Direction[0])
	gl.Uniform3fv(tr.locDirColor, 1, &rig.Dir.Color[0])
	gl.Uniform1f(tr.locDirInt, rig.Dir.Intensity)

	spotPos := [6]float32{
		rig.SpotA.Position[0], rig.SpotA.Position[1], rig.SpotA.Position[2],
		rig.SpotB.Position[0], rig.SpotB.Position[1], rig.SpotB.Position[2],
	}
	dirA := rig.SpotA.AimDirection()
	dirB := rig.SpotB.AimDirection()
	spotDir := [6]float32{dirA[0], dirA[1], dirA[2], dirB[0], dirB[1], dirB[2]}
	spotColor := [6]float32{
		rig.SpotA.Color[0], rig.SpotA.Color[1], rig.SpotA.Color[2],
		rig.SpotB.Color[0], rig.SpotB.Color[1], rig.SpotB.Color[2],
	}
	spotInt := [2]float32{rig.SpotA.Intensity, rig.SpotB.Intensity}

	gl.Uniform3fv(tr.locSpotPos, 2, &spotPos[0])
	gl.Uniform3fv(tr.locSpotDir, 2, &spotDir[0])
	gl.Uniform3fv(tr.locSpotColor, 2, &spotColor[0])
	gl.Uniform1fv(tr.locSpotInt, 2, &spotInt[0])
	gl.Uniform1f(tr.locSpotCutoff, rig.SpotA.CosCutoff)
	gl.Uniform1f(tr.locSpotPen, rig.SpotA.Penumbra)

	// Push the fill slightly back so the wireframe overlay wins the depth test.
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)

	for _, tile := range ts.Tiles {
		mesh, ok := tr.meshes[tile.Grid]
		if !ok {
			continue
		}

		model := tileModelMatrix(tile.Z)
		gl.UniformMatrix4fv(tr.locModel, 1, false, model.Ptr())

		gl.BindVertexArray(mesh.vao)
		gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	}

	gl.Disable(gl.POLYGON_OFFSET_FILL)
	gl.BindVertexArray(0)
}

// tileModelMatrix lays a grid built in the xy plane flat on the ground
// (elevation up) and slides it to the tile's scroll position.
func tileModelMatrix(z float32) math.Mat4 {
	return math.Translate(0, 0, z).Mul(math.RotateX(-float32(gomath.Pi) / 2))
}

// Destroy releases GPU resources.
func (tr *TerrainRenderer) Destroy() {
	for _, m := range tr.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	tr.meshes = nil
	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
		tr.program = 0
	}
}
