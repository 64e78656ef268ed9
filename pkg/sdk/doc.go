// Package sdk provides the high-level entry point of the Cardano SDK.
//
// # Quick Start
//
//	import (
//		"github.com/singnet/cardano-sdk-go/pkg/config"
//		"github.com/singnet/cardano-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		core, err := sdk.NewSDK(&config.Config{
//			Network:   "testnet",
//			ProjectID: "YOUR_PROJECT_ID",
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		core.Configure(func(q *config.QueryParameters) {
//			q.SetCount(10).SetOrder(config.Descending)
//		})
//
//		u, err := core.RequestURL("blocks/latest/txs")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(u)
//	}
//
// # Logging
//
// The package installs a console zap logger writing to stderr at info level
// as the global logger. Config.Debug lowers the level to debug. Replace it
// with zap.ReplaceGlobals to route logs elsewhere.
//
// # Thread Safety
//
// Core is not safe for concurrent use when SetNetwork or Configure are called.
// Take a copy with Settings and share that instead.
package sdk
