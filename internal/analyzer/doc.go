// 版权所有 2024 repo-quality-tool Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 analyzer 提供单文件分析服务，串联读取、语言识别、
度量计算、指标记录与历史持久化。

# 概述

Service 是命令行与核心计算之间的唯一入口。它本身不做任何
度量推导，只负责把文件内容交给 halstead.Computer，并在成功或
失败后更新 Prometheus 指标；配置了历史存储时写入一条运行记录。
历史写入失败只记录日志，不影响分析结果。

# 语言识别

显式指定的语言优先；否则按文件扩展名查找；仍无法识别时回退到
analysis.default_language。
*/
package analyzer
