package renderer

import (
	"fmt"
	"image"
	"sync"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rajveermalviya/go-webgpu/wgpu"

	"sandbox/internal/camera"
	"sandbox/internal/shading"
	"sandbox/internal/world"
	"sandbox/pkg/sectors"
)

// MeshVertex is the vertex format of the colored mesh pipeline.
type MeshVertex struct {
	Position [3]float32
	Color    [3]float32
}

// terrainUniforms matches the terrain shader's Uniforms block.
type terrainUniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// meshUniforms matches the mesh shader's Uniforms block. The trailing
// padding keeps the struct a multiple of 16 bytes as WGSL requires.
type meshUniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Time       float32
	_          [3]float32
}

// SectorMesh holds the GPU resources for one uploaded sector.
type SectorMesh struct {
	vertexBuf  *wgpu.Buffer
	indexBuf   *wgpu.Buffer
	uniformBuf *wgpu.Buffer
	bindGroup  *wgpu.BindGroup
	indexCount uint32
	model      mgl32.Mat4
}

// Renderer handles all WebGPU rendering: the textured terrain
// pipeline drawing sector meshes and the colored mesh pipeline
// drawing the pulsing spawn marker.
type Renderer struct {
	device          *wgpu.Device
	queue           *wgpu.Queue
	surface         *wgpu.Surface
	adapter         *wgpu.Adapter
	swapChain       *wgpu.SwapChain
	swapChainFormat wgpu.TextureFormat

	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView

	terrainPipeline *wgpu.RenderPipeline
	terrainLayout   *wgpu.BindGroupLayout
	meshPipeline    *wgpu.RenderPipeline
	meshLayout      *wgpu.BindGroupLayout

	sampler     *wgpu.Sampler
	terrainTex  *wgpu.Texture
	terrainView *wgpu.TextureView

	// Spawn marker drawn by the mesh pipeline
	markerVertexBuf  *wgpu.Buffer
	markerIndexBuf   *wgpu.Buffer
	markerUniformBuf *wgpu.Buffer
	markerBindGroup  *wgpu.BindGroup
	markerIndexCount uint32
	markerModel      mgl32.Mat4

	meshes   map[string]*SectorMesh
	meshesMu sync.RWMutex

	clearColor wgpu.Color

	width  uint32
	height uint32
}

// NewRenderer creates a WebGPU renderer. terrainAtlas is the texture
// sampled by the terrain pipeline.
func NewRenderer(adapter *wgpu.Adapter, device *wgpu.Device, queue *wgpu.Queue, surface *wgpu.Surface, width, height uint32, terrainAtlas *image.RGBA) (*Renderer, error) {
	r := &Renderer{
		adapter:    adapter,
		device:     device,
		queue:      queue,
		surface:    surface,
		width:      width,
		height:     height,
		meshes:     make(map[string]*SectorMesh),
		clearColor: wgpu.Color{A: 1.0},
	}

	if err := r.init(terrainAtlas); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) init(terrainAtlas *image.RGBA) error {
	r.swapChainFormat = r.surface.GetPreferredFormat(r.adapter)

	if err := r.createSwapChain(); err != nil {
		return err
	}
	if err := r.createDepthTexture(); err != nil {
		return err
	}

	var err error
	r.sampler, err = r.device.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU:   wgpu.AddressMode_Repeat,
		AddressModeV:   wgpu.AddressMode_Repeat,
		AddressModeW:   wgpu.AddressMode_Repeat,
		MagFilter:      wgpu.FilterMode_Nearest,
		MinFilter:      wgpu.FilterMode_Nearest,
		MipmapFilter:   wgpu.MipmapFilterMode_Nearest,
		MaxAnisotrophy: 1,
	})
	if err != nil {
		return fmt.Errorf("sampler creation failed: %w", err)
	}

	r.terrainTex, r.terrainView, err = r.createTexture(terrainAtlas)
	if err != nil {
		return fmt.Errorf("terrain texture creation failed: %w", err)
	}

	if err := r.createTerrainPipeline(); err != nil {
		return err
	}
	if err := r.createMeshPipeline(); err != nil {
		return err
	}
	if err := r.createMarker(); err != nil {
		return err
	}

	return nil
}

func (r *Renderer) createSwapChain() error {
	var err error
	r.swapChain, err = r.device.CreateSwapChain(r.surface, &wgpu.SwapChainDescriptor{
		Usage:       wgpu.TextureUsage_RenderAttachment,
		Format:      r.swapChainFormat,
		Width:       r.width,
		Height:      r.height,
		PresentMode: wgpu.PresentMode_Fifo,
	})
	if err != nil {
		return fmt.Errorf("swap chain creation failed: %w", err)
	}
	return nil
}

func (r *Renderer) createDepthTexture() error {
	var err error
	r.depthTexture, err = r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "depth_texture",
		Size: wgpu.Extent3D{
			Width:              r.width,
			Height:             r.height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension_2D,
		Format:        wgpu.TextureFormat_Depth24Plus,
		Usage:         wgpu.TextureUsage_RenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("depth texture creation failed: %w", err)
	}

	r.depthView, err = r.depthTexture.CreateView(&wgpu.TextureViewDescriptor{
		Format:          wgpu.TextureFormat_Depth24Plus,
		Dimension:       wgpu.TextureViewDimension_2D,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
		Aspect:          wgpu.TextureAspect_All,
	})
	if err != nil {
		return fmt.Errorf("depth view creation failed: %w", err)
	}
	return nil
}

func (r *Renderer) createTexture(img *image.RGBA) (*wgpu.Texture, *wgpu.TextureView, error) {
	texture, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "terrain_texture",
		Size: wgpu.Extent3D{
			Width:              uint32(img.Bounds().Dx()),
			Height:             uint32(img.Bounds().Dy()),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension_2D,
		Format:        wgpu.TextureFormat_RGBA8UnormSrgb,
		Usage:         wgpu.TextureUsage_TextureBinding | wgpu.TextureUsage_CopyDst,
	})
	if err != nil {
		return nil, nil, err
	}

	r.queue.WriteTexture(
		&wgpu.ImageCopyTexture{Texture: texture, MipLevel: 0, Origin: wgpu.Origin3D{}, Aspect: wgpu.TextureAspect_All},
		img.Pix,
		&wgpu.TextureDataLayout{Offset: 0, BytesPerRow: uint32(img.Stride), RowsPerImage: uint32(img.Bounds().Dy())},
		&wgpu.Extent3D{Width: uint32(img.Bounds().Dx()), Height: uint32(img.Bounds().Dy()), DepthOrArrayLayers: 1},
	)

	view, err := texture.CreateView(&wgpu.TextureViewDescriptor{
		Format:          wgpu.TextureFormat_RGBA8UnormSrgb,
		Dimension:       wgpu.TextureViewDimension_2D,
		BaseMipLevel:    0,
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
		Aspect:          wgpu.TextureAspect_All,
	})
	if err != nil {
		texture.Release()
		return nil, nil, err
	}

	return texture, view, nil
}

func (r *Renderer) createTerrainPipeline() error {
	shader, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "terrain_shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: TerrainShader},
	})
	if err != nil {
		return fmt.Errorf("terrain shader creation failed: %w", err)
	}
	defer shader.Release()

	r.terrainLayout, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "terrain_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStage_Vertex,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingType_Uniform},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStage_Fragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingType_Filtering},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStage_Fragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleType_Float,
					ViewDimension: wgpu.TextureViewDimension_2D,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("terrain bind group layout creation failed: %w", err)
	}

	vertexLayout := wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(world.TerrainVertex{})),
		StepMode:    wgpu.VertexStepMode_Vertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormat_Float32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormat_Float32x2, Offset: 12, ShaderLocation: 1},
		},
	}

	r.terrainPipeline, err = r.createPipeline("terrain_pipeline", shader, r.terrainLayout, vertexLayout)
	if err != nil {
		return fmt.Errorf("terrain pipeline creation failed: %w", err)
	}
	return nil
}

func (r *Renderer) createMeshPipeline() error {
	shader, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "mesh_shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: MeshShader},
	})
	if err != nil {
		return fmt.Errorf("mesh shader creation failed: %w", err)
	}
	defer shader.Release()

	r.meshLayout, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "mesh_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStage_Vertex | wgpu.ShaderStage_Fragment,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingType_Uniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("mesh bind group layout creation failed: %w", err)
	}

	vertexLayout := wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(MeshVertex{})),
		StepMode:    wgpu.VertexStepMode_Vertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormat_Float32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormat_Float32x3, Offset: 12, ShaderLocation: 1},
		},
	}

	r.meshPipeline, err = r.createPipeline("mesh_pipeline", shader, r.meshLayout, vertexLayout)
	if err != nil {
		return fmt.Errorf("mesh pipeline creation failed: %w", err)
	}
	return nil
}

// createPipeline builds a render pipeline with the settings shared by
// both pipelines: triangle lists, back-face culling, depth testing.
func (r *Renderer) createPipeline(label string, shader *wgpu.ShaderModule, layout *wgpu.BindGroupLayout, vertexLayout wgpu.VertexBufferLayout) (*wgpu.RenderPipeline, error) {
	pipelineLayout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            label + "_layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return nil, err
	}
	defer pipelineLayout.Release()

	return r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label,
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    r.swapChainFormat,
				Blend:     &wgpu.BlendState_Replace,
				WriteMask: wgpu.ColorWriteMask_All,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopology_TriangleList,
			FrontFace: wgpu.FrontFace_CCW,
			CullMode:  wgpu.CullMode_Back,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormat_Depth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunction_Less,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunction_Always},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunction_Always},
			StencilReadMask:   0xFFFFFFFF,
			StencilWriteMask:  0xFFFFFFFF,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
}

// createMarker builds the pulsing spawn marker: a unit cube with one
// color per corner, drawn by the mesh pipeline above the origin.
func (r *Renderer) createMarker() error {
	corners := [8][3]float32{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}

	vertices := make([]MeshVertex, 0, 8)
	for _, c := range corners {
		// Corner coordinates double as the corner's color
		vertices = append(vertices, MeshVertex{Position: c, Color: c})
	}

	indices := []uint32{
		4, 5, 6, 4, 6, 7, // front
		1, 0, 3, 1, 3, 2, // back
		5, 1, 2, 5, 2, 6, // right
		0, 4, 7, 0, 7, 3, // left
		3, 7, 6, 3, 6, 2, // top
		0, 1, 5, 0, 5, 4, // bottom
	}

	var err error
	r.markerVertexBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "marker_vertices",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsage_Vertex,
	})
	if err != nil {
		return err
	}

	r.markerIndexBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "marker_indices",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsage_Index,
	})
	if err != nil {
		return err
	}
	r.markerIndexCount = uint32(len(indices))

	r.markerUniformBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "marker_uniforms",
		Contents: wgpu.ToBytes([]meshUniforms{{}}),
		Usage:    wgpu.BufferUsage_Uniform | wgpu.BufferUsage_CopyDst,
	})
	if err != nil {
		return err
	}

	r.markerBindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "marker_bind_group",
		Layout: r.meshLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: r.markerUniformBuf, Size: uint64(unsafe.Sizeof(meshUniforms{}))},
		},
	})
	if err != nil {
		return err
	}

	// Hover the cube above the world origin
	r.markerModel = mgl32.Translate3D(-0.5, 0.5, -0.5)
	return nil
}

// SetClearColor sets the sky color used when clearing the frame.
func (r *Renderer) SetClearColor(red, green, blue, alpha float64) {
	r.clearColor = wgpu.Color{R: red, G: green, B: blue, A: alpha}
}

// UploadSectorMesh uploads a generated sector mesh to the GPU. Empty
// meshes are recorded without buffers so the sector is not re-queued.
func (r *Renderer) UploadSectorMesh(idx sectors.Index, mesh *world.Mesh) error {
	key := idx.String()

	r.meshesMu.RLock()
	_, exists := r.meshes[key]
	r.meshesMu.RUnlock()
	if exists {
		return nil
	}

	ox, oy, oz := idx.Origin()
	sm := &SectorMesh{
		model: mgl32.Translate3D(float32(ox), float32(oy), float32(oz)),
	}

	if len(mesh.Indices) > 0 {
		var err error
		sm.vertexBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    "sector_vertices_" + key,
			Contents: wgpu.ToBytes(mesh.Vertices),
			Usage:    wgpu.BufferUsage_Vertex,
		})
		if err != nil {
			return fmt.Errorf("sector vertex buffer failed: %w", err)
		}

		sm.indexBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    "sector_indices_" + key,
			Contents: wgpu.ToBytes(mesh.Indices),
			Usage:    wgpu.BufferUsage_Index,
		})
		if err != nil {
			sm.vertexBuf.Release()
			return fmt.Errorf("sector index buffer failed: %w", err)
		}
		sm.indexCount = uint32(len(mesh.Indices))

		sm.uniformBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    "sector_uniforms_" + key,
			Contents: wgpu.ToBytes([]terrainUniforms{{}}),
			Usage:    wgpu.BufferUsage_Uniform | wgpu.BufferUsage_CopyDst,
		})
		if err != nil {
			sm.vertexBuf.Release()
			sm.indexBuf.Release()
			return fmt.Errorf("sector uniform buffer failed: %w", err)
		}

		sm.bindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  "sector_bind_group_" + key,
			Layout: r.terrainLayout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: sm.uniformBuf, Size: uint64(unsafe.Sizeof(terrainUniforms{}))},
				{Binding: 1, Sampler: r.sampler},
				{Binding: 2, TextureView: r.terrainView},
			},
		})
		if err != nil {
			sm.vertexBuf.Release()
			sm.indexBuf.Release()
			sm.uniformBuf.Release()
			return fmt.Errorf("sector bind group failed: %w", err)
		}
	}

	r.meshesMu.Lock()
	r.meshes[key] = sm
	r.meshesMu.Unlock()

	return nil
}

// HasSector checks if a sector mesh has been uploaded.
func (r *Renderer) HasSector(idx sectors.Index) bool {
	r.meshesMu.RLock()
	defer r.meshesMu.RUnlock()
	_, ok := r.meshes[idx.String()]
	return ok
}

// SectorCount returns the number of uploaded sector meshes.
func (r *Renderer) SectorCount() int {
	r.meshesMu.RLock()
	defer r.meshesMu.RUnlock()
	return len(r.meshes)
}

// Render draws one frame: terrain sectors, then the spawn marker.
// elapsed is the time uniform in seconds since startup.
func (r *Renderer) Render(cam *camera.Camera, elapsed float32) error {
	view, err := r.swapChain.GetCurrentTextureView()
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := r.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{})
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOp_Clear,
			StoreOp:    wgpu.StoreOp_Store,
			ClearValue: r.clearColor,
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthClearValue: 1.0,
			DepthLoadOp:     wgpu.LoadOp_Clear,
			DepthStoreOp:    wgpu.StoreOp_Store,
		},
	})

	aspect := float32(r.width) / float32(r.height)
	viewMat := cam.ViewMatrix()
	projMat := cam.ProjectionMatrix(aspect)

	sectorMin := mgl32.Vec3{0, 0, 0}
	sectorMax := mgl32.Vec3{sectors.Dim, sectors.Dim, sectors.Dim}

	pass.SetPipeline(r.terrainPipeline)

	r.meshesMu.RLock()
	for _, sm := range r.meshes {
		if sm.indexCount == 0 {
			continue
		}
		if !shading.BoxVisible(sm.model, viewMat, projMat, sectorMin, sectorMax) {
			continue
		}

		u := terrainUniforms{Model: sm.model, View: viewMat, Projection: projMat}
		r.queue.WriteBuffer(sm.uniformBuf, 0, wgpu.ToBytes([]terrainUniforms{u}))

		pass.SetBindGroup(0, sm.bindGroup, nil)
		pass.SetVertexBuffer(0, sm.vertexBuf, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(sm.indexBuf, wgpu.IndexFormat_Uint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(sm.indexCount, 1, 0, 0, 0)
	}
	r.meshesMu.RUnlock()

	pass.SetPipeline(r.meshPipeline)

	mk := meshUniforms{Model: r.markerModel, View: viewMat, Projection: projMat, Time: elapsed}
	r.queue.WriteBuffer(r.markerUniformBuf, 0, wgpu.ToBytes([]meshUniforms{mk}))

	pass.SetBindGroup(0, r.markerBindGroup, nil)
	pass.SetVertexBuffer(0, r.markerVertexBuf, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.markerIndexBuf, wgpu.IndexFormat_Uint32, 0, wgpu.WholeSize)
	pass.DrawIndexed(r.markerIndexCount, 1, 0, 0, 0)

	pass.End()

	cmdBuffer, err := encoder.Finish(&wgpu.CommandBufferDescriptor{})
	if err != nil {
		return err
	}
	defer cmdBuffer.Release()

	r.queue.Submit(cmdBuffer)
	r.swapChain.Present()

	return nil
}

// Resize handles window resize
func (r *Renderer) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	r.width = width
	r.height = height

	if r.swapChain != nil {
		r.swapChain.Release()
	}
	if err := r.createSwapChain(); err != nil {
		fmt.Printf("Failed to recreate swap chain: %v\n", err)
	}

	if r.depthView != nil {
		r.depthView.Release()
	}
	if r.depthTexture != nil {
		r.depthTexture.Release()
	}
	if err := r.createDepthTexture(); err != nil {
		fmt.Printf("Failed to recreate depth texture: %v\n", err)
	}
}

// Release frees all GPU resources
func (r *Renderer) Release() {
	r.meshesMu.Lock()
	for _, sm := range r.meshes {
		if sm.indexCount == 0 {
			continue
		}
		sm.bindGroup.Release()
		sm.uniformBuf.Release()
		sm.indexBuf.Release()
		sm.vertexBuf.Release()
	}
	r.meshesMu.Unlock()

	r.markerBindGroup.Release()
	r.markerUniformBuf.Release()
	r.markerIndexBuf.Release()
	r.markerVertexBuf.Release()

	r.terrainView.Release()
	r.terrainTex.Release()
	r.sampler.Release()

	r.meshLayout.Release()
	r.meshPipeline.Release()
	r.terrainLayout.Release()
	r.terrainPipeline.Release()

	if r.depthView != nil {
		r.depthView.Release()
	}
	if r.depthTexture != nil {
		r.depthTexture.Release()
	}
	if r.swapChain != nil {
		r.swapChain.Release()
	}
}
