// Package userapi provides a client for a user collection endpoint that
// returns a JSON array of objects with fields id, login and avatar_url
// (the GitHub users listing shape).
//
// The client performs exactly one HTTP GET per FetchUsers call; there is
// no retrying, caching or pagination. Every failure mode (transport
// error, non-2xx status, malformed body) surfaces as a single wrapped
// error whose message is suitable for direct display.
//
//	client := userapi.NewClient(
//	    userapi.WithEndpoint("https://api.github.com/users"),
//	    userapi.WithTimeout(10*time.Second),
//	)
//	users, err := client.FetchUsers(ctx)
package userapi
