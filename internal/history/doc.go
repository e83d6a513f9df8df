// 版权所有 2024 repo-quality-tool Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 history 将每次 Halstead 分析的结果持久化到 SQLite，
用于查看同一文件的度量随时间的变化。

# 核心类型

  - Record：一次运行的记录，ID 为 UUID，未定义的度量值存储为 NULL。
  - Store：基于 database.PoolManager 的记录存取。
*/
package history
