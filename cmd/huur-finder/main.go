package main

import (
	"huur-backend/cmd/huur-finder/commands"
	"huur-backend/lib/serviceutil"
	"huur-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	err := telemetry.SetupFromEnv(ctx, "huur-finder")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer telemetry.Shutdown(ctx)

	commands.Execute(ctx)
}
