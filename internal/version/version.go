package version

// Version はビルド時に -ldflags "-X ytkeypoints/internal/version.Version=..." で上書きする
var Version = "0.1.0"
