package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// =============================================================
//
//	Shaders
//
// =============================================================

// Shader pairs GLSL sources with the linked program object.
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	uniforms       *UniformCache
}

// Compile builds and links the program. Compilation or link failures are
// hard errors; the viewer refuses to run with an invalid program.
func (shader *Shader) Compile() error {
	vs, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	fs, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return err
	}
	program, err := GenShaderProgram(vs, fs)
	if err != nil {
		return err
	}
	shader.program = program
	shader.uniforms = NewUniformCache(program)
	return nil
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
	}
}

// GenShader compiles a single shader stage, returning the info log on
// failure.
func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		stage := "vertex"
		if shaderType == gl.FRAGMENT_SHADER {
			stage = "fragment"
		}
		return 0, fmt.Errorf("%s shader compilation failed: %s", stage, strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}

// GenShaderProgram links the two stages into a program. The stage objects
// are released either way.
func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program link failed: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return program, nil
}

// lightingGLSL is the single source of the lighting evaluation. It is
// concatenated into the Gouraud vertex stage and the Phong fragment stage,
// so both shading modes run the identical shade() function and only the
// invocation site differs. It mirrors lighting.Evaluate on the Go side.
const lightingGLSL = `
struct Material {
    vec4 ambient;
    vec4 diffuse;
    vec4 specular;
    float shininess;
};
struct Light {
    vec4 ambient;
    vec4 diffuse;
    vec4 specular;
    vec3 position;
};

uniform Material material;
uniform Light lights[2];
uniform vec3 eyePos;

vec3 shade(vec3 pos, vec3 N) {
    vec3 color = vec3(0.0);
    for (int i = 0; i < 2; i++) {
        color += vec3(lights[i].ambient * material.ambient);
        vec3 L = normalize(lights[i].position - pos);
        float diff = max(dot(N, L), 0.0);
        color += vec3(lights[i].diffuse * material.diffuse) * diff;
        if (diff > 0.0) {
            vec3 V = normalize(eyePos - pos);
            vec3 R = reflect(-L, N);
            float spec = pow(max(dot(R, V), 0.0), material.shininess);
            color += vec3(lights[i].specular * material.specular) * spec;
        }
    }
    return color;
}
`

var gouraudVertexSource = `#version 330 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;
` + lightingGLSL + `
out vec3 vColor;

void main() {
    vec3 worldPos = vec3(uModel * vec4(aPos, 1.0));
    vec3 worldN = normalize(mat3(transpose(inverse(uModel))) * aNormal);
    vColor = shade(worldPos, worldN);
    gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}
` + "\x00"

var gouraudFragmentSource = `#version 330 core

in vec3 vColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(vColor, 1.0);
}
` + "\x00"

var phongVertexSource = `#version 330 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 FragPos;
out vec3 Normal;

void main() {
    FragPos = vec3(uModel * vec4(aPos, 1.0));
    Normal = mat3(transpose(inverse(uModel))) * aNormal;
    gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}
` + "\x00"

var phongFragmentSource = `#version 330 core

in vec3 FragPos;
in vec3 Normal;
out vec4 FragColor;
` + lightingGLSL + `
void main() {
    vec3 N = normalize(Normal);
    FragColor = vec4(shade(FragPos, N), 1.0);
}
` + "\x00"

var normalColorVertexSource = `#version 330 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 vColor;

void main() {
    vColor = aColor;
    gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}
` + "\x00"

var normalColorFragmentSource = `#version 330 core

in vec3 vColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(abs(vColor), 1.0);
}
` + "\x00"

func InitGouraudShader() Shader {
	return Shader{vertexSource: gouraudVertexSource, fragmentSource: gouraudFragmentSource}
}

func InitPhongShader() Shader {
	return Shader{vertexSource: phongVertexSource, fragmentSource: phongFragmentSource}
}

func InitNormalColorShader() Shader {
	return Shader{vertexSource: normalColorVertexSource, fragmentSource: normalColorFragmentSource}
}
