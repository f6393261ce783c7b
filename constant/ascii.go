package constant

// AsciiArtLogo is the application's banner.
const AsciiArtLogo = `
  ___ _ __ _____  _____ _ __
 | '_ \ '__/ _ \ \/ / _ \ '__|
 | |_) | | | (_) >  <  __/ |
 | .__/|_|  \___/_/\_\___|_|
 |_|`
