package main

import (
	"stillscene/engine"
	"stillscene/logging"
	"stillscene/materials"
	"stillscene/meshes"
	"stillscene/renderer/rend3dgl"
	"stillscene/scene"
	"stillscene/shaders"
	"stillscene/textures"
	"stillscene/timing"

	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	WINDOW_WIDTH  = 1280
	WINDOW_HEIGHT = 720

	SCENE_SHADER_PATH = "./res/shaders/scene.glsl"
	TEXTURE_DIR       = "./res/textures"
	MODEL_DIR         = "./res/models"

	FRAME_TIME_LOG_INTERVAL = 1000
)

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	win, err := engine.CreateOpenGLWindowCentered("Still Scene", WINDOW_WIDTH, WINDOW_HEIGHT, engine.WindowFlags_RESIZABLE)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer win.Destroy()

	engine.SetMSAA(true)
	engine.SetVSync(true)

	prog, err := shaders.LoadAndCompileCombinedShader(SCENE_SHADER_PATH)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load scene shader. Err:", err)
	}
	prog.Bind()
	setupCamera(&prog)

	rend := rend3dgl.NewRend3DGL()
	texReg := textures.NewRegistry(textures.NewGLBackend())
	matReg := materials.NewRegistry()
	shapes := meshes.NewShapeBank(rend, MODEL_DIR)
	disp := scene.NewStateDispatcher(&prog, texReg, matReg)

	builder := scene.NewBuilder(
		disp, texReg, matReg, shapes,
		scene.TabletopTextures(TEXTURE_DIR),
		scene.TabletopMaterials(),
		scene.TabletopLights(),
		scene.TabletopObjects(),
	)

	if err := builder.Prepare(); err != nil {
		logging.ErrLog.Fatalln("Failed to prepare scene. Err:", err)
	}

	for !win.ShouldQuit {

		timing.FrameStarted()

		win.PollEvents()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		builder.Render()
		rend.FrameEnd()

		win.SDLWin.GLSwap()
		timing.FrameEnded()

		if timing.FrameCount()%FRAME_TIME_LOG_INTERVAL == 0 {
			logging.InfoLog.Printf("Frame time: %.2fms\n", timing.DT()*1000)
		}
	}

	builder.Destroy()
	prog.Delete()
}

// setupCamera pushes the fixed view/projection of the still life. The scene
// is static, so these are set once, not per frame.
func setupCamera(prog *shaders.ShaderProgram) {

	camPos := gglm.NewVec3(0, 7, 14)
	target := gglm.NewVec3(0, 3, 0)
	worldUp := gglm.NewVec3(0, 1, 0)

	viewMat := gglm.LookAtRH(&camPos, &target, &worldUp).Mat4
	projMat := gglm.Perspective(45*gglm.Deg2Rad, float32(WINDOW_WIDTH)/float32(WINDOW_HEIGHT), 0.1, 100)

	prog.SetUnifMat4(shaders.Uniform_View.Name(), &viewMat)
	prog.SetUnifMat4(shaders.Uniform_Projection.Name(), &projMat)
	prog.SetUnifVec3(shaders.Uniform_ViewPosition.Name(), &camPos)
}
