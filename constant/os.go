package constant

// Windows is the runtime.GOOS value of the only platform without unix sockets for the player.
const Windows = "windows"
