// Package request defines the request records sent to the game server.
//
// Requests are immutable values built with a constructor and With* methods
// that return modified copies. Every request flattens into a keyed record
// whose field names are the server's form keys:
//
//	req := request.NewLevelsRequest("bloodbath").WithPage(2)
//	body := req.String()                       // "gameVersion=22&binaryVersion=38&...&str=bloodbath&page=2"
//	url := request.Endpoints{}.URL(req)        // "https://www.boomlings.com/database/getGJLevels21.php"
//
// Sending the request is left to the caller; the reply is decoded with the
// matching response.Parse function.
package request
