package commands

// CheckUpdatesPackage exports checkUpdatesPackage for testing.
const CheckUpdatesPackage = checkUpdatesPackage
