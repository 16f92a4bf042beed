package pages

import (
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
	"scene-gallery/session"
)

func init() {
	register(Page{Route: "shader", Title: "Shader Demo", Build: buildShader, Defaults: shaderDefaults})
}

const tileVertexShader = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 2) in vec2 inUV;

uniform mat4 mvp;

out vec2 vUv;

void main() {
    vUv = inUV;
    gl_Position = mvp * vec4(inPosition, 1.0);
}
`

// Glowing tiles whose brightness cycles with iTime, offset per tile by
// the Bayer threshold in iChannel0.
const tileFragmentShader = `
#version 410 core
uniform vec3 iResolution;
uniform float iTime;
uniform sampler2D iChannel0;

in vec2 vUv;
out vec4 outColor;

#define TIMESCALE 0.25
#define TILES 8
#define COLOR 0.7, 1.6, 2.8

void mainImage(out vec4 fragColor, in vec2 fragCoord) {
    vec2 uv = fragCoord.xy / iResolution.xy;
    uv.x *= iResolution.x / iResolution.y;

    vec4 noise = texture(iChannel0, floor(uv * float(TILES)) / float(TILES));
    float p = 1.0 - mod(noise.r + noise.g + noise.b + iTime * float(TIMESCALE), 1.0);
    p = min(max(p * 3.0 - 1.8, 0.1), 2.0);

    vec2 r = mod(uv * float(TILES), 1.0);
    r = vec2(pow(r.x - 0.5, 2.0), pow(r.y - 0.5, 2.0));
    p *= 1.0 - pow(min(1.0, 12.0 * dot(r, r)), 2.0);

    fragColor = vec4(COLOR, 1.0) * p;
}

void main() {
    mainImage(outColor, vUv * iResolution.xy);
}
`

func shaderDefaults() panel.Snapshot {
	return panel.Snapshot{"speed": panel.Number(0.2)}
}

func buildShader(env Env) (*Demo, error) {
	d, err := newDemo(env, shaderDefaults())
	if err != nil {
		return nil, err
	}
	cam := d.Session.Camera()
	cam.FOV, cam.Near, cam.Far = 75, 0.1, 5
	cam.SetPosition(math.NewVec3(0, 0, 2))
	cam.LookAt(math.Vec3Zero)

	mat := scene.NewShaderMaterial("TileShader", tileVertexShader, tileFragmentShader, map[string]any{
		"iTime":       float32(0),
		"iResolution": math.NewVec3(1, 1, 1),
		"iChannel0":   scene.NewBayerTexture(8),
	})
	cube := scene.NewMeshNode("Cube", scene.CreateBox(1, 1, 1), mat)
	d.Session.AddObject(cube)
	d.orbit(math.Vec3Zero)
	d.showStats = true

	speed := float32(0.2)
	mustBind(d.Panel.BindNumber("speed", panel.Constraints{Label: "rotation speed", Range: panel.Between(0, 2), Step: 0.05}, func(v float64) {
		speed = float32(v)
	}))
	d.Session.AddUpdater(session.UpdateFunc(func(f session.Frame) {
		t := f.Seconds()
		rot := t * speed
		cube.Transform.Rotation.X = rot
		cube.Transform.Rotation.Y = rot
		mat.SetUniform("iTime", t)
	}))
	return d.start(), nil
}
