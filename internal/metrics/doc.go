// 版权所有 2024 repo-quality-tool Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 metrics 提供基于 Prometheus 的分析指标采集能力。

# 概述

本包通过 Collector 统一注册和记录 Prometheus 指标。每个 Collector
持有独立的 Registry（通过 promauto.With 注册），一次命令行运行结束后
可以将全部指标以 node_exporter textfile 格式写出。

# 核心类型

  - Collector：指标收集器，持有 Counter、Histogram、Gauge 等
    Prometheus 向量指标。

# 主要能力

  - 分析指标：分析总数（按 language/status 分组）、分析耗时。
  - Token 指标：按 language/role 统计被计为操作符与操作数的 Token。
  - 结果指标：最近一次分析的 vocabulary 与 length，按 file 分组。
  - 导出：WriteTextfile 写出 textfile collector 文件。
*/
package metrics
