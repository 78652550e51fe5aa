// Package http serves the notes demo API.
//
// The API is a single composed endpoint mounted on a chi router under
// /api:
//
//	GET    /api/version          build info
//	POST   /api/token            exchange credentials for a JWT
//	GET    /api/session          count visits in a private cookie
//	GET    /api/notes/live       websocket feed of note events (426 without upgrade)
//	GET    /api/notes            list notes (limit, offset, tag)
//	GET    /api/notes/{id}       read a note
//	POST   /api/notes            create a note (Bearer)
//	PUT    /api/notes/{id}       update a note (Bearer, optional If-Match)
//	DELETE /api/notes/{id}       delete a note (Bearer)
//
// When a static directory is configured its files are served under
// /static.
package http
