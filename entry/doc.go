// Package entry implements the entry-point logic for a macsig server process,
// including opinionated defaults for things like logging and tracing.
//
// Example usage:
//
//	func main() {
//		app := entry.NewApplication("macsigd")
//		defer app.Stop()
//
//		engine, err := mac.NewEngine([]byte(cfg.SigningKey))
//		if err != nil {
//			app.Fail("Failed to initialize engine", err)
//		}
//
//		h := buildHandler(engine)
//
//		entry.RunServer(app, h, "", 5055)
//	}
package entry
