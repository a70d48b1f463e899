package logging

import "github.com/sirupsen/logrus"

// Log returns a logger scoped to this module. All packages log through this
// entry so output can be filtered on the module field.
func Log() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "signrelay")
}
