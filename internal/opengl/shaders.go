package opengl

// Attribute locations shared by the default program and shader materials:
// 0 position, 1 normal, 2 uv, 3 color. Shader materials get the same
// transform uniforms (mvp, model, view, projection) as the default program.

const maxPointLights = 8
const maxDirLights = 4

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;
layout(location = 3) in vec4 inColor;

uniform mat4 mvp;
uniform mat4 model;

out vec3 fragWorldPos;
out vec3 fragNormal;
out vec2 fragUV;
out vec4 fragColor;

void main() {
    vec4 world   = model * vec4(inPosition, 1.0);
    fragWorldPos = world.xyz;
    fragNormal   = mat3(model) * inNormal;
    fragUV       = inUV;
    fragColor    = inColor;
    gl_Position  = mvp * vec4(inPosition, 1.0);
}
` + "\x00"

// Physical shading: a diffuse term, a reflectivity-weighted specular lobe
// shaped by roughness and a clearcoat lobe on top. Back faces flip their
// normal so double sided surfaces light from both sides.
const fragSrc = `
#version 410 core
in vec3 fragWorldPos;
in vec3 fragNormal;
in vec2 fragUV;
in vec4 fragColor;

out vec4 outColor;

uniform vec3  matColor;
uniform float matOpacity;
uniform bool  lit;
uniform float matRoughness;
uniform float matMetalness;
uniform float matClearcoat;
uniform float matClearcoatRoughness;
uniform float matReflectivity;

uniform vec3 ambientColor;
uniform vec3 cameraPos;

#define MAX_POINT_LIGHTS 8
uniform int   pointLightCount;
uniform vec3  pointLightPos[MAX_POINT_LIGHTS];
uniform vec3  pointLightColor[MAX_POINT_LIGHTS];
uniform float pointLightDistance[MAX_POINT_LIGHTS];
uniform float pointLightDecay[MAX_POINT_LIGHTS];

#define MAX_DIR_LIGHTS 4
uniform int  dirLightCount;
uniform vec3 dirLightDir[MAX_DIR_LIGHTS];
uniform vec3 dirLightColor[MAX_DIR_LIGHTS];

float lobe(vec3 N, vec3 L, vec3 V, float roughness) {
    vec3 H = normalize(L + V);
    float shininess = mix(256.0, 2.0, clamp(roughness, 0.0, 1.0));
    return pow(max(dot(N, H), 0.0), shininess);
}

float attenuation(float d, float range, float decay) {
    float a = 1.0 / max(pow(d, decay), 0.01);
    if (range > 0.0) {
        a *= clamp(1.0 - pow(d / range, 4.0), 0.0, 1.0);
    }
    return a;
}

vec3 shade(vec3 N, vec3 V, vec3 L, vec3 radiance, vec3 base) {
    float NdL = max(dot(N, L), 0.0);
    vec3 F0      = mix(vec3(0.16 * matReflectivity * matReflectivity), base, matMetalness);
    vec3 diffuse = base * (1.0 - matMetalness);
    vec3 spec    = F0 * lobe(N, L, V, matRoughness);
    vec3 coat    = vec3(0.04) * matClearcoat * lobe(N, L, V, matClearcoatRoughness);
    return (diffuse + spec + coat) * radiance * NdL;
}

void main() {
    vec4 base = fragColor * vec4(matColor, matOpacity);
    if (!lit) {
        outColor = base;
        return;
    }

    vec3 N = normalize(fragNormal);
    if (!gl_FrontFacing) {
        N = -N;
    }
    vec3 V = normalize(cameraPos - fragWorldPos);

    vec3 color = ambientColor * base.rgb;
    for (int i = 0; i < pointLightCount; i++) {
        vec3 d = pointLightPos[i] - fragWorldPos;
        float dist = length(d);
        vec3 radiance = pointLightColor[i] * attenuation(dist, pointLightDistance[i], pointLightDecay[i]);
        color += shade(N, V, d / max(dist, 0.0001), radiance, base.rgb);
    }
    for (int i = 0; i < dirLightCount; i++) {
        color += shade(N, V, normalize(-dirLightDir[i]), dirLightColor[i], base.rgb);
    }
    outColor = vec4(color, base.a);
}
` + "\x00"
