//go:build !nogpu

package surface

// Register the native wgpu HAL backends for the "wgpu" manager.
import _ "github.com/gogpu/wgpu/hal/allbackends"
