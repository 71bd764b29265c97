// Package config provides deployment target selection for the PHYA waitlist client.
//
// A deployment target names the backend a build submits to: its API base URL,
// the tenant domain sent with every submission, and the contact address shown
// when something goes wrong. Targets live in a YAML catalogue compiled into the
// binary; developers may override it with their own file.
//
// # Catalogue Location
//
// The override file, when present, is read from platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/phya/targets.yaml or $HOME/.config/phya/targets.yaml
//   - macOS: $HOME/.config/phya/targets.yaml
//   - Windows: %LOCALAPPDATA%\phya\targets.yaml
//
// # Selecting a Target
//
// The target is chosen once at startup and injected into the submission client.
// A --target flag wins over PHYA_TARGET, which defaults to production:
//
//	catalogue, err := config.Load(targetsFile)
//	if err != nil {
//	    return err
//	}
//	e, err := config.LoadEnv()
//	if err != nil {
//	    return err
//	}
//	target, err := config.Resolve(catalogue, targetFlag, e)
//
// Every target is validated when the catalogue is parsed, so a resolved Target
// always carries a URL, a hostname and a contact address.
package config
