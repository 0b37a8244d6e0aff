// Package spotr is a typed client for the Spotify Web API.
//
// A [Client] wraps an authenticated HTTP session: it acquires and caches
// bearer tokens (client-credentials or authorization-code flow), retries
// rate-limited requests, and decodes endpoint responses into native structs.
//
//	creds, err := spotr.CredentialsFromEnv()
//	if err != nil {
//		// CLIENT_ID or CLIENT_SECRET not set
//	}
//	client := spotr.New(creds)
//	album, err := client.GetAlbum(ctx, "1XkGORuUX2QGOEIL4EbJKm", "")
//
// Endpoints that accept an unbounded list of IDs (GetAlbums, GetTracks, ...)
// transparently split the list into the batch sizes the API imposes and stitch
// the results back together in input order.
package spotr
