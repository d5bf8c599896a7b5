// Package shaders provides the GLSL sources for the scene renderers.
package shaders

// TerrainVertexShader transforms terrain vertices and passes world position
// to the fragment stage for derivative-based normals.
const TerrainVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vWorldPos;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    gl_Position = uViewProj * world;
}
`

// TerrainFragmentShader shades the terrain surface with one directional
// light and two spotlights. Normals come from screen-space derivatives of
// the world position, so the mesh carries no normal attribute.
const TerrainFragmentShader = `#version 410 core
in vec3 vWorldPos;

uniform vec3 uCameraPos;
uniform vec3 uBaseColor;
uniform float uMetalness;
uniform float uRoughness;

uniform vec3 uDirDirection;
uniform vec3 uDirColor;
uniform float uDirIntensity;

uniform vec3 uSpotPositions[2];
uniform vec3 uSpotDirections[2];
uniform vec3 uSpotColors[2];
uniform float uSpotIntensities[2];
uniform float uSpotCosCutoff;
uniform float uSpotPenumbra;

out vec4 FragColor;

vec3 shade(vec3 N, vec3 V, vec3 L, vec3 lightColor, float intensity) {
    float NdotL = max(dot(N, L), 0.0);
    vec3 diffuse = uBaseColor * (1.0 - uMetalness) * NdotL;

    vec3 H = normalize(L + V);
    float shininess = mix(256.0, 4.0, uRoughness);
    float spec = pow(max(dot(N, H), 0.0), shininess);
    vec3 specColor = mix(vec3(0.04), uBaseColor, uMetalness);

    return (diffuse + specColor * spec * NdotL) * lightColor * intensity;
}

void main() {
    vec3 N = normalize(cross(dFdx(vWorldPos), dFdy(vWorldPos)));
    if (dot(N, uCameraPos - vWorldPos) < 0.0) {
        N = -N;
    }
    vec3 V = normalize(uCameraPos - vWorldPos);

    vec3 color = shade(N, V, -uDirDirection, uDirColor, uDirIntensity);

    for (int i = 0; i < 2; i++) {
        vec3 toLight = uSpotPositions[i] - vWorldPos;
        float dist = length(toLight);
        vec3 L = toLight / dist;

        float theta = dot(-L, uSpotDirections[i]);
        float cone = smoothstep(uSpotCosCutoff, uSpotCosCutoff + uSpotPenumbra, theta);
        float atten = 1.0 / (1.0 + 0.02 * dist * dist);

        color += shade(N, V, L, uSpotColors[i], uSpotIntensities[i]) * cone * atten;
    }

    FragColor = vec4(color, 1.0);
}
`

// LineVertexShader transforms wireframe path vertices, nudging them
// slightly toward the camera along the normal axis so the lines sit on
// top of the fill without z-fighting.
const LineVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;

uniform mat4 uModel;
uniform mat4 uViewProj;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    world.y += 0.01;
    gl_Position = uViewProj * world;
}
`

// LineFragmentShader outputs the flat neon line color. Values above 1.0
// are allowed; the bloom pass picks them up.
const LineFragmentShader = `#version 410 core
uniform vec3 uLineColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(uLineColor, 1.0);
}
`

// SunVertexShader places the sun quad in world space behind the terrain.
const SunVertexShader = `#version 410 core
layout (location = 0) in vec2 aPosition;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec2 vUV;

void main() {
    vUV = aPosition * 0.5 + 0.5;
    vec4 world = uModel * vec4(aPosition, 0.0, 1.0);
    gl_Position = uViewProj * world;
}
`

// SunFragmentShader draws the gradient disc with the horizontal cut lines
// that widen toward the horizon.
const SunFragmentShader = `#version 410 core
in vec2 vUV;

uniform vec3 uTopColor;
uniform vec3 uBottomColor;

out vec4 FragColor;

void main() {
    vec2 centered = vUV * 2.0 - 1.0;
    float dist = length(centered);
    float disc = 1.0 - smoothstep(0.98, 1.0, dist);
    if (disc <= 0.0) {
        discard;
    }

    vec3 color = mix(uBottomColor, uTopColor, vUV.y);

    // horizontal cuts, denser and wider near the bottom
    float bands = sin(vUV.y * 60.0);
    float cutWidth = smoothstep(0.8, 0.0, vUV.y) * 0.8;
    float cut = smoothstep(cutWidth, cutWidth + 0.1, bands * 0.5 + 0.5);

    FragColor = vec4(color, disc * cut);
}
`

// BackgroundVertexShader draws a fullscreen triangle pinned to the far
// plane, so the starfield sits behind everything.
const BackgroundVertexShader = `#version 410 core
out vec2 vUV;

void main() {
    vec2 pos = vec2(float((gl_VertexID << 1) & 2), float(gl_VertexID & 2)) * 2.0 - 1.0;
    vUV = pos * 0.5 + 0.5;
    gl_Position = vec4(pos, 0.9999, 1.0);
}
`

// BackgroundFragmentShader mixes the flat background color with the
// starfield texture, fading the stars out toward the horizon.
const BackgroundFragmentShader = `#version 410 core
in vec2 vUV;

uniform sampler2D uStars;
uniform vec3 uBackground;

out vec4 FragColor;

void main() {
    vec3 stars = texture(uStars, vUV).rgb;
    float fade = smoothstep(0.25, 0.6, vUV.y);
    FragColor = vec4(uBackground + stars * fade, 1.0);
}
`
