package soft

// GL enumerants the software context understands.
const (
	glNoError          = 0
	glInvalidEnum      = 0x0500
	glInvalidValue     = 0x0501
	glInvalidOperation = 0x0502
	glOutOfMemory      = 0x0505

	glDepthBufferBit   = 0x00000100
	glStencilBufferBit = 0x00000400
	glColorBufferBit   = 0x00004000

	glCullFace                  = 0x0B44
	glDepthTest                 = 0x0B71
	glStencilTest               = 0x0B90
	glDither                    = 0x0BD0
	glBlend                     = 0x0BE2
	glScissorTest               = 0x0C11
	glPolygonOffsetFill         = 0x8037
	glSampleAlphaToCoverage     = 0x809E
	glSampleCoverage            = 0x80A0
	glRasterizerDiscard         = 0x8C89
	glPrimitiveRestartFixedIdx  = 0x8D69
	glDepthClearValue           = 0x0B73
	glStencilClearValue         = 0x0B91
	glViewport                  = 0x0BA2
	glScissorBox                = 0x0C10
	glColorClearValue           = 0x0C22
	glMaxTextureSize            = 0x0D33
	glTextureBinding2D          = 0x8069
	glActiveTexture             = 0x84E0
	glMaxVertexAttribs          = 0x8869
	glArrayBufferBinding        = 0x8894
	glElementArrayBufferBinding = 0x8895
	glMaxCombinedTextureUnits   = 0x8B4D
	glCurrentProgram            = 0x8B8D
	glFramebufferBinding        = 0x8CA6

	glTexture0       = 0x84C0
	glTexture2D      = 0x0DE1
	glTexture3D      = 0x806F
	glTextureCubeMap = 0x8513
	glTexture2DArray = 0x8C1A

	glArrayBuffer             = 0x8892
	glElementArrayBuffer      = 0x8893
	glPixelPackBuffer         = 0x88EB
	glPixelUnpackBuffer       = 0x88EC
	glUniformBuffer           = 0x8A11
	glTransformFeedbackBuffer = 0x8C8E
	glCopyReadBuffer          = 0x8F36
	glCopyWriteBuffer         = 0x8F37
	glBufferSize              = 0x8764
	glBufferUsage             = 0x8765
	glStreamDraw              = 0x88E0
	glDynamicCopy             = 0x88EA

	glReadFramebuffer                   = 0x8CA8
	glDrawFramebuffer                   = 0x8CA9
	glFramebuffer                       = 0x8D40
	glRenderbuffer                      = 0x8D41
	glFramebufferComplete               = 0x8CD5
	glFramebufferIncompleteMissingAttmt = 0x8CD7

	glFragmentShader  = 0x8B30
	glVertexShader    = 0x8B31
	glShaderType      = 0x8B4F
	glDeleteStatus    = 0x8B80
	glCompileStatus   = 0x8B81
	glLinkStatus      = 0x8B82
	glValidateStatus  = 0x8B83
	glInfoLogLength   = 0x8B84
	glAttachedShaders = 0x8B85
	glShaderSourceLen = 0x8B88

	glTriangleFan = 0x0006
)

// Limits reported through glGetIntegerv.
const (
	MaxTextureSize  = 4096
	MaxVertexAttribs = 16
	MaxTextureUnits = 32
)

// EGL enumerants.
const (
	eglSuccess        = 0x3000
	eglNotInitialized = 0x3001
	eglBadAlloc       = 0x3003
	eglBadAttribute   = 0x3004
	eglBadConfig      = 0x3005
	eglBadContext     = 0x3006
	eglBadDisplay     = 0x3008
	eglBadMatch       = 0x3009
	eglBadParameter   = 0x300C
	eglBadSurface     = 0x300D

	eglAlphaSize   = 0x3021
	eglBlueSize    = 0x3022
	eglGreenSize   = 0x3023
	eglRedSize     = 0x3024
	eglDepthSize   = 0x3025
	eglStencilSize = 0x3026
	eglConfigID    = 0x3028
	eglNone        = 0x3038
	eglHeight      = 0x3056
	eglWidth       = 0x3057
	eglDraw        = 0x3059
	eglRead        = 0x305A

	eglBackBuffer           = 0x3084
	eglRenderBuffer         = 0x3086
	eglContextClientType    = 0x3097
	eglContextClientVersion = 0x3098
	eglOpenGLESAPI          = 0x30A0

	eglSyncFenceKHR              = 0x30F9
	eglConditionSatisfiedKHR     = 0x30F6
	eglSyncPriorCommandsComplete = 0x30F0
)

// Handles this backend hands to the calling domain for its single
// display and single config.
const (
	DisplayHandle uintptr = 1
	ConfigHandle  uintptr = 1
)
