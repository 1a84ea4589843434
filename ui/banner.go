package ui

// bannerText is the startup banner, suppressed by --no-banner.
const bannerText = `
 _                          _
| | ___   __ _ _ __ __ _  __| | __ _ _ __
| |/ _ \ / _` + "`" + ` | '__/ _` + "`" + ` |/ _` + "`" + ` |/ _` + "`" + ` | '__|
| | (_) | (_| | | | (_| | (_| | (_| | |
|_|\___/ \__, |_|  \__,_|\__,_|\__,_|_|
         |___/
`
