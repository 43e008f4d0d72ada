// @title Pulse 培训合规 API
// @version 1.0
// @description Pulse 企业培训平台的员工学习进度与合规报表服务。

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/app"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/config"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/logger"
)

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// 命令行参数
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg, *configPath)
	defer logger.Log.Sync()

	application.Run()
}
