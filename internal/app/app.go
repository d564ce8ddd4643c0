package app

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rajveermalviya/go-webgpu/wgpu"

	"sandbox/internal/camera"
	"sandbox/internal/config"
	"sandbox/internal/debugserver"
	"sandbox/internal/renderer"
	"sandbox/internal/resource"
	"sandbox/internal/world"
	"sandbox/pkg/sectors"
)

// SpawnY is the camera's starting height above the terrain surface.
const SpawnY = 2.0

type App struct {
	window   *glfw.Window
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	renderer *renderer.Renderer
	camera   *camera.Camera
	store    *world.Store
	stats    *debugserver.Server

	keys   map[glfw.Key]bool
	keysMu sync.RWMutex

	// Accumulated mouse-look deltas since the last frame
	mouseDX float64
	mouseDY float64
	mouseMu sync.Mutex

	sectorRequests chan sectors.Index
	stopChan       chan struct{}

	width, height int

	frameSeconds float64
	frameMu      sync.RWMutex
}

func New() (*App, error) {
	runtime.LockOSThread()

	cfg := config.Get()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("GLFW init failed: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.CocoaRetinaFramebuffer, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window creation failed: %w", err)
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	app := &App{
		window:         window,
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
		keys:           make(map[glfw.Key]bool),
		sectorRequests: make(chan sectors.Index, 500),
		stopChan:       make(chan struct{}),
	}

	if err := app.initWebGPU(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	store, err := world.NewStore(cfg.World.Dir, cfg.World.Seed, cfg.World.Workers)
	if err != nil {
		return nil, fmt.Errorf("sector store creation failed: %w", err)
	}
	app.store = store

	fov := mgl32.DegToRad(float32(cfg.Camera.FovDegrees))
	app.camera = camera.New(mgl32.Vec3{0, SpawnY, 0}, fov)

	res := resource.LoadAll(cfg.Rendering.ResourceDir)

	app.renderer, err = renderer.NewRenderer(app.adapter, app.device, app.queue, app.surface,
		uint32(cfg.Window.Width), uint32(cfg.Window.Height), res.Terrain())
	if err != nil {
		return nil, fmt.Errorf("renderer creation failed: %w", err)
	}
	app.renderer.SetClearColor(cfg.Rendering.ClearColorRGBA())

	app.setupCallbacks()

	// Start sector loaders
	for i := 0; i < cfg.World.Workers; i++ {
		go app.sectorLoader()
	}

	if cfg.Rendering.StatsPort != 0 {
		app.stats = debugserver.NewServer(cfg.Rendering.StatsPort, app.snapshotStats)
		go func() {
			if err := app.stats.Start(); err != nil {
				fmt.Printf("Stats server error: %v\n", err)
			}
		}()
	}

	return app, nil
}

func (app *App) initWebGPU() error {
	app.instance = wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: wgpu.InstanceBackend_Metal,
	})
	if app.instance == nil {
		return fmt.Errorf("failed to create WebGPU instance")
	}

	app.surface = CreateSurface(app.instance, app.window)
	if app.surface == nil {
		return fmt.Errorf("surface creation failed")
	}

	var err error
	app.adapter, err = app.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: app.surface,
		PowerPreference:   wgpu.PowerPreference_HighPerformance,
	})
	if err != nil {
		fmt.Println("Trying adapter without surface constraint...")
		app.adapter, err = app.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
			PowerPreference: wgpu.PowerPreference_HighPerformance,
		})
		if err != nil {
			return fmt.Errorf("adapter request failed: %w", err)
		}
	}

	props := app.adapter.GetProperties()
	fmt.Printf("GPU: %s (%s)\n", props.Name, props.DriverDescription)

	app.device, err = app.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "SandboxDevice",
	})
	if err != nil {
		return fmt.Errorf("device request failed: %w", err)
	}

	app.queue = app.device.GetQueue()
	return nil
}

func (app *App) setupCallbacks() {
	app.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		app.width = width
		app.height = height
		app.renderer.Resize(uint32(width), uint32(height))
	})

	app.window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		app.mouseMu.Lock()
		app.mouseDX += x
		app.mouseDY += y
		app.mouseMu.Unlock()
		w.SetCursorPos(0, 0)
	})

	app.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		app.keysMu.Lock()
		if action == glfw.Press {
			app.keys[key] = true
		} else if action == glfw.Release {
			app.keys[key] = false
		}
		app.keysMu.Unlock()

		if action == glfw.Release {
			switch key {
			case glfw.KeyEscape:
				w.SetShouldClose(true)
			case glfw.KeyP:
				app.frameMu.RLock()
				fmt.Printf("frame time: %fs\n", app.frameSeconds)
				app.frameMu.RUnlock()
			}
		}
	})
}

func (app *App) processInput() {
	cfg := config.Get()
	moveSpeed := float32(cfg.Camera.MoveSpeed)
	rotSpeed := float32(cfg.Camera.RotSpeed)

	app.keysMu.RLock()

	// Strafe
	if app.keys[glfw.KeyD] {
		app.camera.MoveX(moveSpeed)
	} else if app.keys[glfw.KeyA] {
		app.camera.MoveX(-moveSpeed)
	}

	// Fly up / down
	if app.keys[glfw.KeySpace] {
		app.camera.Slide(mgl32.Vec3{0, moveSpeed, 0})
	} else if app.keys[glfw.KeyLeftShift] {
		app.camera.Slide(mgl32.Vec3{0, -moveSpeed, 0})
	}

	// Forward / backward
	if app.keys[glfw.KeyS] {
		app.camera.MoveZ(moveSpeed)
	} else if app.keys[glfw.KeyW] {
		app.camera.MoveZ(-moveSpeed)
	}

	// Pan / pitch with arrow keys
	if app.keys[glfw.KeyLeft] {
		app.camera.Spin(0, rotSpeed)
	} else if app.keys[glfw.KeyRight] {
		app.camera.Spin(0, -rotSpeed)
	}
	if app.keys[glfw.KeyUp] {
		app.camera.Spin(rotSpeed, 0)
	} else if app.keys[glfw.KeyDown] {
		app.camera.Spin(-rotSpeed, 0)
	}

	app.keysMu.RUnlock()

	// Pan / pitch with mouse
	app.frameMu.RLock()
	mouseSpeed := cfg.Camera.MouseSensitivity * app.frameSeconds
	app.frameMu.RUnlock()

	app.mouseMu.Lock()
	dx, dy := app.mouseDX, app.mouseDY
	app.mouseDX, app.mouseDY = 0, 0
	app.mouseMu.Unlock()

	app.camera.Spin(float32(-dy*mouseSpeed), float32(-dx*mouseSpeed))
}

func (app *App) sectorLoader() {
	for {
		select {
		case <-app.stopChan:
			return
		case idx := <-app.sectorRequests:
			if app.renderer.HasSector(idx) {
				continue
			}
			data, err := app.store.GetSector(idx)
			if err != nil {
				fmt.Printf("Sector load error %s: %v\n", idx.String(), err)
				continue
			}
			mesh := world.GenMesh(data)
			if err := app.renderer.UploadSectorMesh(idx, mesh); err != nil {
				fmt.Printf("Upload error %s: %v\n", idx.String(), err)
			}
		}
	}
}

func (app *App) loadVisibleSectors() {
	pos := app.camera.Position
	visible := sectors.Visible(float64(pos.X()), float64(pos.Y()), float64(pos.Z()),
		config.Get().World.RenderDistance)
	for _, idx := range visible {
		if !app.renderer.HasSector(idx) {
			select {
			case app.sectorRequests <- idx:
			default:
			}
		}
	}
}

func (app *App) snapshotStats() debugserver.Stats {
	app.frameMu.RLock()
	frame := app.frameSeconds
	app.frameMu.RUnlock()

	pos := app.camera.Position
	return debugserver.Stats{
		LoadedSectors: app.renderer.SectorCount(),
		FrameSeconds:  frame,
		CameraX:       float64(pos.X()),
		CameraY:       float64(pos.Y()),
		CameraZ:       float64(pos.Z()),
	}
}

func (app *App) Run() error {
	start := time.Now()
	lastTitle := time.Now()
	frames := 0

	for !app.window.ShouldClose() {
		frameStart := time.Now()

		glfw.PollEvents()
		app.processInput()
		app.loadVisibleSectors()

		elapsed := float32(time.Since(start).Seconds())
		if err := app.renderer.Render(app.camera, elapsed); err != nil {
			fmt.Printf("Render error: %v\n", err)
		}

		frames++
		if time.Since(lastTitle) >= time.Second {
			app.window.SetTitle(fmt.Sprintf("%s | Sectors: %d | FPS: %d",
				config.Get().Window.Title, app.renderer.SectorCount(), frames))
			frames = 0
			lastTitle = time.Now()
		}

		app.frameMu.Lock()
		app.frameSeconds = time.Since(frameStart).Seconds()
		app.frameMu.Unlock()
	}

	return nil
}

func (app *App) Cleanup() {
	close(app.stopChan)
	if app.stats != nil {
		app.stats.Stop()
	}
	if app.renderer != nil {
		app.renderer.Release()
	}
	if app.store != nil {
		app.store.Close()
	}
	if app.queue != nil {
		app.queue.Release()
	}
	if app.device != nil {
		app.device.Release()
	}
	if app.adapter != nil {
		app.adapter.Release()
	}
	if app.surface != nil {
		app.surface.Release()
	}
	if app.instance != nil {
		app.instance.Release()
	}
	if app.window != nil {
		app.window.Destroy()
	}
	glfw.Terminate()
}
