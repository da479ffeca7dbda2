package recipe

import "runtime"

// HostOS returns the settings name of the operating system this process runs on.
func HostOS() string {
	switch runtime.GOOS {
	case "windows":
		return OSWindows
	case "darwin":
		return OSMacos
	case "linux":
		return OSLinux
	case "freebsd":
		return "FreeBSD"
	case "android":
		return "Android"
	case "ios":
		return "iOS"
	}
	return runtime.GOOS
}

// HostArch returns the settings name of the architecture this process runs on.
func HostArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	case "arm64":
		return "armv8"
	case "arm":
		return "armv7"
	}
	return runtime.GOARCH
}

// HostCompiler returns the default compiler for the host operating system.
func HostCompiler() string {
	switch runtime.GOOS {
	case "windows":
		return "msvc"
	case "darwin", "ios":
		return "apple-clang"
	case "freebsd":
		return "clang"
	}
	return "gcc"
}
